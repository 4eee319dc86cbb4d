// Package gui is the desktop front end. It turns controller snapshots into
// widgets and forwards user gestures to the controller; it keeps no state of
// its own beyond what is on screen.
package gui
