// Copyright 2026 go-tue Authors
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

package tue

import (
	"log/slog"
	"sync/atomic"

	"github.com/tuemath/go-tue/tue/simd"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger sets the logger used by tue and its sub-packages. The default
// discards everything; nil restores it. SetLogger is safe for concurrent use.
//
// The new logger immediately receives one debug record naming the compiled
// SIMD backend and whether the running CPU supports it:
//
//	tue.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
	l.Debug("tue: simd backend",
		"backend", simd.CurrentBackend(),
		"hardware_supported", simd.HardwareSupported(),
		"lanes", simd.Lanes)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
