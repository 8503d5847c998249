// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package slidejson

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "SLIDEJSON"

// Config is the environment form of the converter options.
type Config struct {
	DPI           float64    `envconfig:"DPI" default:"96"`
	SlideWidth    int64      `envconfig:"SLIDE_WIDTH" default:"18288000"`
	SlideHeight   int64      `envconfig:"SLIDE_HEIGHT" default:"10287000"`
	Workers       int        `envconfig:"WORKERS" default:"1"`
	GroupScaling  bool       `envconfig:"GROUP_SCALING" default:"false"`
	GroupClipping bool       `envconfig:"GROUP_CLIPPING" default:"false"`
	Notes         bool       `envconfig:"NOTES" default:"true"`
	LogLevel      slog.Level `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads SLIDEJSON_* variables, falling back to the defaults above.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return c, nil
}
