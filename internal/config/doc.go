// Package config loads HCL render profiles. A profile describes everything
// about a render job except the label itself: page size, resolution, extra
// fonts, variable values and the output target.
package config
