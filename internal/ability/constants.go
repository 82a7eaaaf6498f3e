package ability

// Parameter names accepted in item definition files
const (
	ParamDamage  = "damage"
	ParamAmount  = "amount"
	ParamSeconds = "seconds"
)

// Defaults used when a parameter is omitted
const (
	DefaultStrikeDamage  = 6.0
	DefaultHealAmount    = 4.0
	DefaultIgniteSeconds = 3.0
	DefaultSmiteDamage   = 4.0
	DefaultSmiteSeconds  = 2.0
)

// Chat feedback sent to actors that accept messages
const (
	MsgHealed       = "§aYou feel restored."
	MsgSmiteCaster  = "§eYou smite %s!"
	MsgSmiteVictim  = "§cYou were smitten by %s!"
	MsgTargetIgnite = "§6%s bursts into flames."
)

const (
	ErrFmtUnknownAbility = "%w: %q (known: %s)"
	ErrFmtUnknownParam   = "%w: %s does not accept %q"
	ErrFmtNegativeParam  = "%w: %s %s must not be negative"
)
