package utils

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/Masterminds/semver"
)

func FromEnv(varName, defaultVal string) string {
	val := os.Getenv(varName)
	if val == "" {
		val = defaultVal
	}
	return val
}

func BoolFromEnv(varName string) bool {
	return strings.ToLower(os.Getenv(varName)) == "true"
}

// exists returns whether the given file or directory exists or not
func Exists(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	if os.IsNotExist(err) {
		return false
	}
	return true
}

func Assert(want, got interface{}, t *testing.T) {
	t.Helper()
	if want == nil && got == nil {
		return
	}
	if !reflect.DeepEqual(want, got) {
		_, file, line, _ := runtime.Caller(1)
		splitted := strings.Split(file, string(os.PathSeparator))
		t.Fatalf("%v:%v: Failed: got %v, want %v", splitted[len(splitted)-1], line, got, want)
	}
}

func CheckVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		reg := "version examples: 1.0.1, 1.5.0-dev, 1.8.1-alpha.1"
		return fmt.Errorf("%v: %v; %v", version, err.Error(), reg)
	}
	if v.String() != version {
		return fmt.Errorf("Version must be a valid semantic version. Given %v, normalized form is %v", version, v.String())
	}
	return nil
}
