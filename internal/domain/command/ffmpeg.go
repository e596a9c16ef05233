package command

// FFmpeg
const (
	FFmpeg = "ffmpeg"

	InputFlag    = "-i"
	VideoFilter  = "-vf"
	MetadataFlag = "metadata"
	CodecFlag    = "codec"
	CodecCopy    = "copy"
)

// Metadata fields rewritten in the container.
const (
	MetaArtist = "artist"
	MetaAlbum  = "album"
)
