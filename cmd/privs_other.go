//go:build !unix

package cmd

import "ggm/util"

func dropPrivileges(_, _ string, logger *util.Logger) error {
	logger.Debug("Privilege drop is not supported on this platform")
	return nil
}
