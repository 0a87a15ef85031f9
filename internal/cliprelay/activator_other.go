//go:build !windows

package cliprelay

func NewActivator() (WindowActivator, error) {
	return nil, ErrUnsupported
}
