//  Copyright (c) 2026 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tabledfa

import (
	"io"
	"os"
	"os/exec"
)

// ExportSVGFile will invoke ExportSVG and send the output to a new file
// at the provided path.
func ExportSVGFile(d *DFA, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return ExportSVG(d, file)
}

// ExportSVG renders the DFA as SVG by piping its dot representation
// through the GraphViz dot binary, which must be on the PATH.
func ExportSVG(d *DFA, w io.Writer) error {
	pr, pw := io.Pipe()
	go func() {
		_ = pw.CloseWithError(ExportDot(d, pw))
	}()
	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = pr
	cmd.Stdout = w
	cmd.Stderr = io.Discard
	err := cmd.Run()
	_ = pr.Close()
	return err
}
