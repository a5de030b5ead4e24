package setting

import "errors"

var ErrSettingNotFound = errors.New("site settings not configured")
