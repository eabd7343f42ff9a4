package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/anyswap/xrpl-model-codec/common"
	"github.com/anyswap/xrpl-model-codec/log"
)

const (
	maxVerbosity = 6
)

var (
	codecConfig     *CodecConfig
	codecConfigLock sync.RWMutex
)

// CodecConfig config items (decode from toml file)
type CodecConfig struct {
	Log    *LogConfig    `toml:",omitempty" json:",omitempty"`
	Schema *SchemaConfig `toml:",omitempty" json:",omitempty"`
}

// LogConfig log config, overridden by command line flags
type LogConfig struct {
	Verbosity   *uint32 `toml:",omitempty" json:",omitempty"`
	JSONFormat  bool
	ColorFormat bool
}

// SchemaConfig where model schemas are loaded from
type SchemaConfig struct {
	// Dir holds *.toml schema files, relative paths resolve against the config file
	Dir string
	// File is a single schema file, used when Dir is empty
	File string `toml:",omitempty" json:",omitempty"`
	// Default model name when a command is given none
	Default string `toml:",omitempty" json:",omitempty"`
}

// CheckConfig check log config
func (c *LogConfig) CheckConfig() error {
	if c.Verbosity != nil && *c.Verbosity > maxVerbosity {
		return fmt.Errorf("log verbosity %v exceeds max %v", *c.Verbosity, maxVerbosity)
	}
	return nil
}

// CheckConfig check schema config
func (c *SchemaConfig) CheckConfig() error {
	if c.Dir == "" && c.File == "" {
		return errors.New("schema must config 'Dir' or 'File'")
	}
	if c.Dir != "" && c.File != "" {
		return errors.New("schema config 'Dir' and 'File' are exclusive")
	}
	path := c.Dir
	if path == "" {
		path = c.File
	}
	if !common.FileExist(path) {
		return fmt.Errorf("schema path '%v' not exist", path)
	}
	return nil
}

// CheckConfig check config
func CheckConfig(config *CodecConfig) (err error) {
	if config.Log != nil {
		err = config.Log.CheckConfig()
		if err != nil {
			return err
		}
	}
	if config.Schema != nil {
		err = config.Schema.CheckConfig()
		if err != nil {
			return err
		}
	}
	return nil
}

// GetConfig get codec config, never nil
func GetConfig() *CodecConfig {
	codecConfigLock.RLock()
	defer codecConfigLock.RUnlock()
	if codecConfig == nil {
		return &CodecConfig{}
	}
	return codecConfig
}

// SetConfig set codec config
func SetConfig(config *CodecConfig) {
	codecConfigLock.Lock()
	defer codecConfigLock.Unlock()
	codecConfig = config
}

// GetSchemaConfig get schema config
func GetSchemaConfig() *SchemaConfig {
	return GetConfig().Schema
}

// LoadConfig load config
func LoadConfig(configFile string) (*CodecConfig, error) {
	if configFile == "" {
		return nil, errors.New("LoadConfig error: no config file specified")
	}
	log.Debug("Config file is", "file", configFile)
	if !common.FileExist(configFile) {
		return nil, fmt.Errorf("LoadConfig error: config file %v not exist", configFile)
	}
	config := &CodecConfig{}
	if _, err := toml.DecodeFile(configFile, &config); err != nil {
		return nil, fmt.Errorf("LoadConfig error (toml DecodeFile): %w", err)
	}
	if config.Schema != nil {
		dir := filepath.Dir(configFile)
		if config.Schema.Dir != "" {
			config.Schema.Dir = common.AbsolutePath(dir, config.Schema.Dir)
		}
		if config.Schema.File != "" {
			config.Schema.File = common.AbsolutePath(dir, config.Schema.File)
		}
	}

	var bs []byte
	if log.JSONFormat {
		bs, _ = json.Marshal(config)
	} else {
		bs, _ = json.MarshalIndent(config, "", "  ")
	}
	log.Debug("LoadConfig finished. " + string(bs))
	if err := CheckConfig(config); err != nil {
		return nil, fmt.Errorf("Check config failed. %w", err)
	}
	SetConfig(config)
	return config, nil
}
