package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig   = ".config"
	appName     = "arcslider"
	sliderFile  = "slider.toml"
	logFileName = "arcslider.log"
)

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

func SliderFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sliderFile), nil
}

func LogFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}
