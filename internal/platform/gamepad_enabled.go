//go:build !imgui_x11_disable_gamepad

package platform

const gamepadCompiled = true
