package command_test

import (
	"context"
	"slices"
	"testing"

	build "songdl/internal/command/builder"
	"songdl/internal/models"
)

func TestTagArgs(t *testing.T) {
	t.Parallel()

	track := &models.Track{Artist: "Daft Punk", Title: "One More Time", Album: "Discovery"}
	args := build.NewTagCommandBuilder("").Args("in‎file.m4a", ".songdl-1.m4a", track)

	if got := valueAfter(args, "-i"); got != "in‎file.m4a" {
		t.Fatalf("input = %q in %v", got, args)
	}
	if got := valueAfter(args, "-codec"); got != "copy" {
		t.Fatalf("codec = %q in %v", got, args)
	}

	var meta []string
	for i, a := range args {
		if a == "-metadata" {
			meta = append(meta, args[i+1])
		}
	}
	if !slices.Equal(meta, []string{"artist=Daft Punk", "album=Discovery"}) {
		t.Fatalf("metadata = %v", meta)
	}
	if !slices.Contains(args, ".songdl-1.m4a") {
		t.Fatalf("output missing from %v", args)
	}
	if !slices.Contains(args, "-y") {
		t.Fatalf("expected overwrite flag in %v", args)
	}
	if slices.Contains(args, "One More Time") {
		t.Fatalf("title should not be written as metadata: %v", args)
	}
}

func TestTagCommand(t *testing.T) {
	t.Parallel()

	b := build.NewTagCommandBuilder("/opt/bin/ffmpeg")
	cmd := b.TagCommand(context.Background(), "a.m4a", "b.m4a", &models.Track{Artist: "-", Album: "-"})
	if cmd.Args[0] != "/opt/bin/ffmpeg" {
		t.Fatalf("command name = %q", cmd.Args[0])
	}
}
