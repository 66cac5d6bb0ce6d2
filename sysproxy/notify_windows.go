//go:build windows

package sysproxy

import (
	"os"
	"syscall"

	"proxyctl/core"

	"golang.org/x/sys/windows"
)

var (
	modwininet             = windows.NewLazySystemDLL("wininet.dll")
	procInternetSetOptionW = modwininet.NewProc("InternetSetOptionW")
)

// WininetNotifier calls InternetSetOptionW with a NULL handle so that running
// WinINet clients reload their proxy configuration.
type WininetNotifier struct{}

func NewNotifier() core.Notifier {
	return WininetNotifier{}
}

func (WininetNotifier) Notify(option core.NotifyOption) error {
	if err := procInternetSetOptionW.Find(); err != nil {
		return err
	}
	r0, _, err := syscall.SyscallN(procInternetSetOptionW.Addr(), 0, uintptr(option), 0, 0)
	if r0 != 1 {
		return os.NewSyscallError("InternetSetOption("+option.String()+")", err)
	}
	return nil
}
