package dispatchers

// CommandCategory groups commands in root help listings.
type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryInfo                          // version and other self-description
	CategoryConfig                        // configuration file access
	CategoryEnvironment                   // inspecting the process environment
	CategoryUtility                       // small standalone tools (sum)
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryInfo:
		return "about taskcmd"
	case CategoryConfig:
		return "configure taskcmd"
	case CategoryEnvironment:
		return "inspect the environment"
	case CategoryUtility:
		return "utilities"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryInfo,
	CategoryConfig,
	CategoryEnvironment,
	CategoryUtility,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
