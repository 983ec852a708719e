//go:build !windows

package notify

func Default() Reporter { return Console{} }
