package parsing_test

import (
	"errors"
	"testing"

	"songdl/internal/domain/errconsts"
	"songdl/internal/models"
	"songdl/internal/parsing"
)

const d = "‎"

func TestParseTrackFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		file   string
		artist string
		title  string
		album  string
	}{
		{"plain", "Daft Punk" + d + "One More Time" + d + "Discovery.m4a", "Daft Punk", "One More Time", "Discovery"},
		{"missing artist", "NA" + d + "Intro" + d + "Live.m4a", "-", "Intro", "Live"},
		{"missing album", "Artist" + d + "Song" + d + "NA.m4a", "Artist", "Song", "-"},
		{"surrounding spaces", " Artist " + d + " Song " + d + " Album .m4a", "Artist", "Song", "Album"},
		{"hyphens in fields", "Jay-Z" + d + "Song - Remix" + d + "Best-Of.m4a", "Jay-Z", "Song - Remix", "Best-Of"},
		{"dots in album", "Artist" + d + "Song" + d + "Vol. 2.m4a", "Artist", "Song", "Vol. 2"},
		{"NA inside a name", "NAS" + d + "NY State of Mind" + d + "Illmatic.m4a", "NAS", "NY State of Mind", "Illmatic"},
		{"title NA kept", "Artist" + d + "NA" + d + "Album.m4a", "Artist", "NA", "Album"},
		{"empty artist", d + "Song" + d + "Album.m4a", "-", "Song", "Album"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parsing.ParseTrackFilename(tt.file)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Artist != tt.artist || got.Title != tt.title || got.Album != tt.album {
				t.Fatalf("got (%q, %q, %q), want (%q, %q, %q)",
					got.Artist, got.Title, got.Album, tt.artist, tt.title, tt.album)
			}
			if got.SourcePath != tt.file {
				t.Fatalf("source path = %q, want %q", got.SourcePath, tt.file)
			}
		})
	}
}

func TestParseTrackFilename_Malformed(t *testing.T) {
	t.Parallel()

	bad := []string{
		"no delimiter here.m4a",
		"Artist" + d + "Title.m4a",
		"A" + d + "B" + d + "C" + d + "D.m4a",
		"Artist" + d + "   " + d + "Album.m4a",
		"Artist" + d + "Title" + d + "Album",
		"temp.m4a",
	}

	for _, file := range bad {
		if _, err := parsing.ParseTrackFilename(file); !errors.Is(err, errconsts.ErrMalformedFilename) {
			t.Errorf("ParseTrackFilename(%q) error = %v, want ErrMalformedFilename", file, err)
		}
	}
}

func TestTrackFilenameInverse(t *testing.T) {
	t.Parallel()

	in := &models.Track{Artist: "Daft Punk", Title: "One More Time", Album: "Discovery"}
	name := parsing.TrackFilename(in, ".m4a")
	if want := "Daft Punk" + d + "One More Time" + d + "Discovery.m4a"; name != want {
		t.Fatalf("TrackFilename = %q, want %q", name, want)
	}

	out, err := parsing.ParseTrackFilename(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Artist != in.Artist || out.Title != in.Title || out.Album != in.Album {
		t.Fatalf("parse(render(x)) = %+v, want %+v", out, in)
	}
}

func TestOutputFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"One More Time": "One More Time.m4a",
		"AC/DC Live":    "AC_DC Live.m4a",
		"..":            "_...m4a",
		"a\\b":          "a_b.m4a",
	}
	for title, want := range tests {
		if got := parsing.OutputFilename(title, "m4a"); got != want {
			t.Errorf("OutputFilename(%q) = %q, want %q", title, got, want)
		}
	}
}
