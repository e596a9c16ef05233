package consts

// Recommended permissions for different types of files and directories songdl might create.
const (
	// ** World Readable **
	PermsGenericDir = 0o755
	PermsOutputDir  = 0o755

	// Media files - world readable
	PermsAudioFile = 0o644

	// Other files
	PermsLogFile = 0o644

	// ** Private **
	PermsHistoryDB = 0o600
)
