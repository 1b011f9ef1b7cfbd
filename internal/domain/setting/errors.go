package setting

import "errors"

var ErrSettingsNotFound = errors.New("settings not found")
