// This file is part of ramus.
//
// ramus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ramus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ramus.  If not, see <https://www.gnu.org/licenses/>.


package msu1

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// SampleRate is the only sample rate supported by MSU-1 audio.
const SampleRate = 44100

// the header of an MSU-1 PCM file is the magic string followed by the loop
// point as a 32 bit little endian number
const (
	pcmMagic      = "MSU1"
	pcmHeaderSize = 8
)

// PCMHeader returns the header for MSU-1 PCM data with the loop point.
func PCMHeader(loop uint32) []byte {
	return binary.LittleEndian.AppendUint32([]byte(pcmMagic), loop)
}

// ConvertWAV returns the WAV data as MSU-1 PCM data. The WAV data must be
// uncompressed PCM data with one or two channels at 44100Hz.
func ConvertWAV(data []byte, loop uint32) ([]byte, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("wav: not a valid wav file")
	}

	// uncompressed PCM only
	if dec.WavAudioFormat != 1 {
		return nil, fmt.Errorf("wav: unsupported audio format (%d)", dec.WavAudioFormat)
	}

	if dec.SampleRate != SampleRate {
		return nil, fmt.Errorf("wav: unsupported sample rate (%dHz)", dec.SampleRate)
	}

	chans := int(dec.NumChans)
	if chans != 1 && chans != 2 {
		return nil, fmt.Errorf("wav: unsupported number of channels (%d)", chans)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	// normalise every sample to 16 bits
	var sample func(v int) int16
	switch dec.BitDepth {
	case 8:
		// 8 bit WAV data is unsigned
		sample = func(v int) int16 { return int16((v - 128) << 8) }
	case 16:
		sample = func(v int) int16 { return int16(v) }
	case 24:
		sample = func(v int) int16 { return int16(v >> 8) }
	case 32:
		sample = func(v int) int16 { return int16(v >> 16) }
	default:
		return nil, fmt.Errorf("wav: unsupported bit depth (%d)", dec.BitDepth)
	}

	frames := len(buf.Data) / chans
	pcm := make([]byte, 0, pcmHeaderSize+frames*4)
	pcm = append(pcm, PCMHeader(loop)...)

	for i := 0; i < frames*chans; i += chans {
		left := sample(buf.Data[i])
		right := left
		if chans == 2 {
			right = sample(buf.Data[i+1])
		}
		pcm = binary.LittleEndian.AppendUint16(pcm, uint16(left))
		pcm = binary.LittleEndian.AppendUint16(pcm, uint16(right))
	}

	return pcm, nil
}

// ConvertMP3 returns the MP3 data as MSU-1 PCM data. The MP3 data must have a
// sample rate of 44100Hz.
func ConvertMP3(data []byte, loop uint32) ([]byte, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	if dec.SampleRate() != SampleRate {
		return nil, fmt.Errorf("mp3: unsupported sample rate (%dHz)", dec.SampleRate())
	}

	// the decoded stream is always 16bit little endian stereo data, which is
	// the same as the MSU-1 sample format
	size := pcmHeaderSize
	if l := dec.Length(); l > 0 {
		size += int(l)
	}

	pcm := bytes.NewBuffer(make([]byte, 0, size))
	pcm.Write(PCMHeader(loop))

	if _, err := io.Copy(pcm, dec); err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return pcm.Bytes(), nil
}
