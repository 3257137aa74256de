//go:build unix

package cmd

import (
	"fmt"
	"os"
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"

	"ggm/util"
)

// dropPrivileges switches to the named user and group when running as
// root, clears supplementary groups and sets a 077 umask.  It does
// nothing for other users.
func dropPrivileges(userName, groupName string, logger *util.Logger) error {
	if os.Getuid() != 0 {
		return nil
	}

	u, err := user.Lookup(userName)
	if err != nil {
		return err
	}
	g, err := user.LookupGroup(groupName)
	if err != nil {
		return err
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return fmt.Errorf("uid %q: %w", u.Uid, err)
	}
	gid, err := strconv.Atoi(g.Gid)
	if err != nil {
		return fmt.Errorf("gid %q: %w", g.Gid, err)
	}

	if err := unix.Setgroups(nil); err != nil {
		return fmt.Errorf("setgroups: %w", err)
	}
	if err := unix.Setgid(gid); err != nil {
		return fmt.Errorf("setgid: %w", err)
	}
	if err := unix.Setuid(uid); err != nil {
		return fmt.Errorf("setuid: %w", err)
	}
	unix.Umask(0o077)
	logger.Verbose("Dropped privileges to %s:%s", userName, groupName)
	return nil
}
