package configuration

// ControlConfig binds one fan to one sensor through one curve
type ControlConfig struct {
	ID     string `json:"id"`
	Fan    string `json:"fan"`
	Sensor string `json:"sensor"`
	Curve  string `json:"curve"`
}
