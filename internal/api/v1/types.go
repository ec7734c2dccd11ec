package apiv1

// Pong is the response of GET /ping
type Pong struct {
	Ping string `json:"ping"`
}

// EmissionLevel is one municipality with its average change and legend color
type EmissionLevel struct {
	Name      string  `json:"name"`
	Emissions float64 `json:"emissions"`
	Color     string  `json:"color"`
}

// Municipalities is the response of GET /municipalities
type Municipalities struct {
	Names     []string        `json:"names"`
	Emissions []EmissionLevel `json:"emissions"`
}

// Error is the body of every non-2xx response
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
