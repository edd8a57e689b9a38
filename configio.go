package polyfence

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// LoadConfig reads a YAML-encoded Config from path. Fields absent from the
// file keep their DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, newError(ErrIO, "reading config %q: %v", path, err)
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, newError(ErrIO, "parsing config %q: %v", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML to path.
func SaveConfig(cfg Config, path string) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return newError(ErrIO, "encoding config: %v", err)
	}
	if err := ioutil.WriteFile(path, buf, 0644); err != nil {
		return newError(ErrIO, "writing config %q: %v", path, err)
	}
	return nil
}
