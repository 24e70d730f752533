package handlers

import "time"

// timestamp is used in download file names.
func timestamp() string {
	return time.Now().UTC().Format("20060102-150405")
}
