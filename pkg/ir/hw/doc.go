// Package hw binds the ir link to microcontroller peripherals. It is only
// built with TinyGo.
package hw
