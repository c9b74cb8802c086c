package errors

type ExitCode int

const (
	// Bad flags or flag combinations
	UsageExitCode ExitCode = 64

	ConfigFailureExitCode ExitCode = 70
	EnvFailureExitCode    ExitCode = 71

	// Target override or deplete target missing from the fleet
	TargetMissingExitCode  ExitCode = 80
	DepleteFailureExitCode ExitCode = 81

	AdminServerFailureExitCode ExitCode = 90
)
