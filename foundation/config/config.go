package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	defaultFacialInterval = 200 * time.Millisecond
	defaultVoiceInterval  = 2 * time.Second
	defaultTextInterval   = 5 * time.Second
)

func GetProfile(profileConfigPath string, profileID string) (Profile, error) {
	file, err := os.Open(profileConfigPath)
	if err != nil {
		return Profile{}, err
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Profile{}, err
	}

	var config Config

	if err := json.Unmarshal(bytes, &config); err != nil {
		return Profile{}, err
	}
	profile, exists := profileExists(config.Profiles, profileID)
	if !exists {
		return Profile{}, fmt.Errorf("profile[%s] does not exist", profileID)
	}

	return profile, nil
}

func GetProfileName(p Profile) string {
	return p.Name
}

func GetFacialWeight(p Profile) float64 {
	if p.Fusion.FacialWeight <= 0 {
		return 0.5
	}
	return p.Fusion.FacialWeight
}

func GetVoiceWeight(p Profile) float64 {
	if p.Fusion.VoiceWeight <= 0 {
		return 0.3
	}
	return p.Fusion.VoiceWeight
}

func GetTextWeight(p Profile) float64 {
	if p.Fusion.TextWeight <= 0 {
		return 0.2
	}
	return p.Fusion.TextWeight
}

func GetSmootherWindow(p Profile) int {
	if p.Fusion.SmootherWindow <= 0 {
		return 10
	}
	return p.Fusion.SmootherWindow
}

func GetHistoryLimit(p Profile) int {
	if p.Fusion.HistoryLimit <= 0 {
		return 50
	}
	return p.Fusion.HistoryLimit
}

func GetFatigue(p Profile) Fatigue {
	f := p.Fusion.Fatigue
	if f.TiredAfterSec <= 0 {
		f.TiredAfterSec = 2700
	}
	if f.TiredBias <= 0 {
		f.TiredBias = 0.10
	}
	if f.ExhaustedAfterSec <= 0 {
		f.ExhaustedAfterSec = 5400
	}
	if f.ExhaustedBias <= 0 {
		f.ExhaustedBias = 0.15
	}
	return f
}

func GetFacialInterval(p Profile) time.Duration {
	if p.Sampling.FacialIntervalMs <= 0 {
		return defaultFacialInterval
	}
	return time.Duration(p.Sampling.FacialIntervalMs) * time.Millisecond
}

func GetVoiceInterval(p Profile) time.Duration {
	if p.Sampling.VoiceIntervalMs <= 0 {
		return defaultVoiceInterval
	}
	return time.Duration(p.Sampling.VoiceIntervalMs) * time.Millisecond
}

func GetTextInterval(p Profile) time.Duration {
	if p.Sampling.TextIntervalMs <= 0 {
		return defaultTextInterval
	}
	return time.Duration(p.Sampling.TextIntervalMs) * time.Millisecond
}

func profileExists(profiles []Profile, profileID string) (Profile, bool) {
	for _, profile := range profiles {
		if profile.ID == profileID {
			return profile, true
		}
	}
	return Profile{}, false
}
