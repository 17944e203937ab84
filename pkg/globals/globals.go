// Copyright (c) 2023  The Go-Enjin Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package globals

import (
	"fmt"
	"os"

	"github.com/iancoleman/strcase"

	"github.com/go-enjin/be/pkg/hash/sha"
	"github.com/go-enjin/be/pkg/path"
)

const AppName = "style-strings"

var (
	BuildVersion   = "v0.1.0"
	BuildRelease   = "trunk"
	BuildBinPath   = ""
	BuildBinHash   = "0000000000"
	DisplayVersion = BuildVersion + " (trunk) [0000000000]"
	EnvPrefix      = strcase.ToScreamingSnake(AppName)
)

func init() {
	var err error
	if BuildBinPath, BuildBinHash, err = BinCheck(); err == nil {
		DisplayVersion = BuildVersion + " (" + BuildRelease + ") [" + BuildBinHash + "]"
	}
}

// EnvName returns the environment variable name for the given setting
func EnvName(name string) string {
	return EnvPrefix + "_" + strcase.ToScreamingSnake(name)
}

func BinCheck() (absPath, buildBinHash string, err error) {
	if absPath = path.Which(os.Args[0]); absPath == "" {
		err = fmt.Errorf("could not find self: %v", os.Args[0])
		return
	}
	if buildBinHash, err = sha.FileHash10(absPath); err != nil {
		err = fmt.Errorf("%v sha256 error %v: %v", AppName, absPath, err)
		return
	}
	return
}
