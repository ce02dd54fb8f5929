// Command libwhispermel is the C ABI shell around the whispermel
// pipeline. Build with:
//
//	go build -buildmode=c-shared -o libwhispermel.so ./cmd/libwhispermel
//
// The resulting shared object exports extract_whisper_features and
// free_spectrogram_data for a host process to load via dlopen/cgo/FFI.
package main

/*
#include <stdlib.h>
#include <string.h>

typedef struct {
	float*  data;
	size_t  n_frames;
	size_t  n_mels;
} MelSpectrogramData;
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/charmbracelet/log"

	whispermel "github.com/cortexswarm/whisper-mel-go"
)

var abiLogger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "libwhispermel",
})

func nullRecord() C.MelSpectrogramData {
	return C.MelSpectrogramData{}
}

// extract_whisper_features decodes path_utf8, runs the whispermel
// pipeline, and returns the 80x3000 log-mel spectrogram by value. Any
// failure (non-UTF-8 path, decode/resample/FFT/NaN/filterbank error) is
// logged to stderr and collapses to the null record
// (data=nil, n_frames=0, n_mels=0).
//
//export extract_whisper_features
func extract_whisper_features(pathUTF8 *C.char) C.MelSpectrogramData {
	rawPath := C.GoString(pathUTF8)

	spec, err := whispermel.Extract(rawPath)
	if err != nil {
		abiLogger.Errorf("%s: %v", rawPath, err)
		return nullRecord()
	}

	n := len(spec.Data)
	size := C.size_t(n) * C.size_t(unsafe.Sizeof(C.float(0)))
	buf := C.malloc(size)
	if buf == nil {
		abiLogger.Error("out of memory allocating output buffer")
		return nullRecord()
	}
	C.memcpy(buf, unsafe.Pointer(&spec.Data[0]), size)

	return C.MelSpectrogramData{
		data:     (*C.float)(buf),
		n_frames: C.size_t(spec.NFrames),
		n_mels:   C.size_t(spec.NMels),
	}
}

// free_spectrogram_data releases the buffer returned by
// extract_whisper_features. Safe to call on the null record.
//
//export free_spectrogram_data
func free_spectrogram_data(d C.MelSpectrogramData) {
	if d.data != nil {
		C.free(unsafe.Pointer(d.data))
	}
}

func main() {}
