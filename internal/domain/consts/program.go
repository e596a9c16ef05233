package consts

// Program identity.
const (
	ProgramName = "songdl"
	EnvPrefix   = "SONGDL"
)

// TimeFormat is used for start/finish log lines.
const TimeFormat = "2006-01-02 15:04:05.00 MST"
