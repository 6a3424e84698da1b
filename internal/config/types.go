package config

// Agent keys for the three launch stages. These are the AI Config keys
// looked up in LaunchDarkly and the keys used in the agents section of
// the YAML config.
const (
	AgentIdeaValidator     = "idea-validator"
	AgentLandingPageWriter = "landing-page-writer"
	AgentTechStackAdvisor  = "tech-stack-advisor"
)

// AgentKeys lists the known agents in pipeline order.
var AgentKeys = []string{AgentIdeaValidator, AgentLandingPageWriter, AgentTechStackAdvisor}

// File is the top-level structure parsed from launchpad YAML.
type File struct {
	Launchpad Launchpad `yaml:"launchpad"`
}

// Launchpad holds the application configuration: where output goes, how
// the model endpoint is called, and per-agent overrides.
type Launchpad struct {
	OutputDir      string           `yaml:"output_dir"`
	MaxTokens      int              `yaml:"max_tokens"`
	RequestTimeout string           `yaml:"request_timeout"`
	BaseURL        string           `yaml:"base_url"`
	Agents         map[string]Agent `yaml:"agents"`
}

// Agent holds per-agent overrides. Prompt is the fixed one-line user
// message sent alongside the instructions fetched from the AI Config.
type Agent struct {
	Prompt string `yaml:"prompt"`
}
