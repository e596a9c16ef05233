package keys

// Set by the root command, read by main.
const (
	Execute     string = "execute"
	PlaylistURL string = "playlist-url"
)
