package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinBlocks = 1

	// CompanySelectorOther значение селектора компании для свободного ввода:
	// компания не из реестра, тир принудительно catch-all
	CompanySelectorOther = "Other"

	MaxCompanyNameLength = 200
	MaxNoteLength        = 500
)
