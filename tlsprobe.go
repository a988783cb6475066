package tlsprobe

type Target struct {
	Name     string `yaml:"name"`
	Endpoint `yaml:",inline"`
	Chain    bool `yaml:"chain"`
}

type Inventory struct {
	Targets []Target `yaml:"targets"`
}

// TargetReport is the assessment of one named target.
type TargetReport struct {
	Name   string       `json:"name"`
	Report ServerReport `json:"report"`
}
