// Command libkitlog builds the kitlog logger and assertion helper as a C
// shared library:
//
//	go build -buildmode=c-shared -o libkitlog.so ./cmd/libkitlog
//
// Loggers cross the boundary as opaque handles. Every handle returned by
// KitLoggerNew must be released with KitLoggerClose.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"

	"github.com/deploykit/kitlog/internal/assert"
	logger "github.com/deploykit/kitlog/internal/logging"
)

// KitLoggerNew returns a handle to a new logger. A NULL prefix selects
// the default prefix.
//
//export KitLoggerNew
func KitLoggerNew(verbose C.int, prefix *C.char) C.uintptr_t {
	label := logger.DefaultPrefix
	if prefix != nil {
		label = C.GoString(prefix)
	}
	return C.uintptr_t(cgo.NewHandle(logger.NewKitLoggerWithPrefix(verbose != 0, label)))
}

// KitLoggerAppend appends text to the logger's pending line.
//
//export KitLoggerAppend
func KitLoggerAppend(handle C.uintptr_t, text *C.char) {
	if text == nil {
		return
	}
	kitLogger(handle).Append(C.GoString(text))
}

// KitLoggerEndl emits the logger's pending line.
//
//export KitLoggerEndl
func KitLoggerEndl(handle C.uintptr_t) {
	kitLogger(handle).Append(logger.Endl)
}

// KitLoggerClose emits the pending line and releases the handle.
// It returns 0 on success and -1 when the line could not be written.
//
//export KitLoggerClose
func KitLoggerClose(handle C.uintptr_t) C.int {
	h := cgo.Handle(handle)
	defer h.Delete()

	if err := h.Value().(*logger.KitLogger).Close(); err != nil {
		return -1
	}
	return 0
}

// KitAssert terminates the process with message when condition is zero.
//
//export KitAssert
func KitAssert(condition C.int, message *C.char) {
	assert.Assert(condition != 0, C.GoString(message))
}

func kitLogger(handle C.uintptr_t) *logger.KitLogger {
	return cgo.Handle(handle).Value().(*logger.KitLogger)
}

func main() {}
