// Copyright (c) 2024  The Go-Enjin Authors
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

package extract

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fvbommel/sortorder"

	bePath "github.com/go-enjin/be/pkg/path"
)

// expandInput returns the files to read for one input argument. Directories
// are only expanded when recurse is set, yielding every *.json file beneath
// them in natural sort order; any other argument is returned as given.
func expandInput(arg string, recurse bool) (files []string, err error) {
	if !recurse || !bePath.IsDir(arg) {
		files = []string{arg}
		return
	}
	err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, ee error) error {
		if ee != nil {
			return ee
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	sort.Sort(sortorder.Natural(files))
	return
}
