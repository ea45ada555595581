// Package record captures graph outputs over many blocks.
//
// A Recorder drives a graph for a fixed number of samples and keeps the
// full history of the requested output labels, which can then be queried,
// analyzed with an FFT, or written as a tab-separated table.
package record
