//go:build windows

package appdirs

import "errors"

var errUnsupported = errors.New("state dirs are not supported on windows yet")

func ConfigDir() (string, error) { return "", errUnsupported }

func ConfigDirPath() (string, error) { return "", errUnsupported }

func DataDir() (string, error) { return "", errUnsupported }

func DataDirPath() (string, error) { return "", errUnsupported }

func LogsDir() (string, error) { return "", errUnsupported }

func LayoutsDir() (string, error) { return "", errUnsupported }
