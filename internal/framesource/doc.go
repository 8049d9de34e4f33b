// Package framesource supplies fixed-size raw grayscale frames, normally by
// driving an ffmpeg child process over a stdout pipe.
package framesource
