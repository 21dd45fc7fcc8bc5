// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalefmt

import "fmt"

// A ConfigError reports an invalid configuration, such as a column
// name that does not appear in the input table or an unsupported
// output format.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// Configf returns a *ConfigError with a formatted message.
func Configf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// A DataError reports input data that cannot be charted, such as a
// group with no baseline row or a table left empty by filtering.
type DataError struct {
	Msg string
}

func (e *DataError) Error() string {
	return e.Msg
}

// Dataf returns a *DataError with a formatted message.
func Dataf(format string, args ...interface{}) error {
	return &DataError{Msg: fmt.Sprintf(format, args...)}
}
