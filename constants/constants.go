package constants

import "os"

// mido and most DAWs default to 480 PPQ; used when a source file
// carries a non-metric (SMPTE) time format.
const DefaultTicksPerBeat = 480

const DefaultMidiExt = ".mid"

const DocumentationURL = "https://mididiff.readthedocs.io/en/latest/"

const UpdateCheckEnvVar = "MIDIFF_CHECK_UPDATES"

func UpdateCheckEnabled() bool {
	switch os.Getenv(UpdateCheckEnvVar) {
	case "1", "true", "yes", "TRUE", "YES", "True", "Yes":
		return true
	}
	return false
}

func GetServeAddr() string {
	addr := os.Getenv("MIDIFF_SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}
