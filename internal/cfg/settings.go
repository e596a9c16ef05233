package cfg

import (
	"fmt"
	"strings"

	"songdl/internal/domain/errconsts"
	"songdl/internal/domain/keys"
	"songdl/internal/domain/logger"
	"songdl/internal/models"
	"songdl/internal/validation"

	"github.com/spf13/viper"
)

// LoadSettings validates the parsed configuration and returns the run settings.
func LoadSettings() (*models.Settings, error) {
	url := strings.TrimSpace(viper.GetString(keys.PlaylistURL))
	if url == "" {
		return nil, errconsts.ErrNoURL
	}
	site, err := validation.ValidatePlaylistURL(url)
	if err != nil {
		return nil, err
	}

	ext, err := validation.ValidateAudioExtension(viper.GetString(keys.AudioExt))
	if err != nil {
		return nil, err
	}

	concurrency, err := validation.ValidateConcurrency(viper.GetInt(keys.Concurrency))
	if err != nil {
		return nil, err
	}

	retries := viper.GetInt(keys.DLRetries)
	if retries < 0 {
		return nil, fmt.Errorf("retries cannot be negative, got %d", retries)
	}

	workDir := viper.GetString(keys.WorkDir)
	if _, err := validation.ValidateDirectory(workDir, true); err != nil {
		return nil, fmt.Errorf("work directory: %w", err)
	}

	outputDir := viper.GetString(keys.OutputDir)
	if strings.TrimSpace(outputDir) == "" {
		return nil, fmt.Errorf("output directory cannot be empty")
	}

	cookieFile := viper.GetString(keys.CookiePath)
	if cookieFile != "" {
		if _, err := validation.ValidateFile(cookieFile, false); err != nil {
			return nil, fmt.Errorf("cookie file: %w", err)
		}
	}

	s := &models.Settings{
		PlaylistURL:    url,
		Site:           site,
		DownloaderPath: viper.GetString(keys.Downloader),
		MuxerPath:      viper.GetString(keys.Muxer),
		OutputDir:      outputDir,
		WorkDir:        workDir,
		AudioExt:       ext,
		Concurrency:    concurrency,
		FailFast:       viper.GetBool(keys.FailFast),
		EmbedThumbnail: viper.GetBool(keys.EmbedThumbnail),
		CropThumbnail:  viper.GetBool(keys.CropThumbnail),
		CookieSource:   viper.GetString(keys.CookieSource),
		CookieFile:     cookieFile,
		Retries:        retries,
		ExtraArgs:      viper.GetStringSlice(keys.YtdlpArgs),
		VerifyTags:     viper.GetBool(keys.VerifyTags),
		HistoryDB:      viper.GetString(keys.HistoryDB),
	}

	logger.Pl.D(1, "Loaded settings: %+v", *s)
	return s, nil
}
