// Package window provides the cosine-sum analysis windows used to taper
// captured channels before spectral analysis.
package window
