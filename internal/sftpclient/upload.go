package sftpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

type Config struct {
	Host                  string
	Port                  int
	User                  string
	Pass                  string
	RemoteDir             string
	KnownHostsPath        string
	InsecureIgnoreHostKey bool
}

// UploadFile copies localPath to RemoteDir/remoteFileName. The bytes land in
// a .part file first and are renamed into place once complete.
func UploadFile(ctx context.Context, cfg Config, localPath string, remoteFileName string) error {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return fmt.Errorf("sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS")
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}
	if cfg.RemoteDir == "" {
		cfg.RemoteDir = "/"
	}

	cb, err := hostKeyCallback(cfg)
	if err != nil {
		return err
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("sftp: open local file: %w", err)
	}
	defer src.Close()

	sshClient, err := dial(ctx, cfg, cb)
	if err != nil {
		return err
	}
	defer sshClient.Close()

	sftpCli, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer sftpCli.Close()

	return put(sftpCli, src, cfg.RemoteDir, remoteFileName)
}

// put writes src to remoteDir/name through a .part file, replacing any
// existing file of that name.
func put(cli *sftp.Client, src io.Reader, remoteDir, name string) error {
	if err := cli.MkdirAll(remoteDir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", remoteDir, err)
	}

	remotePath := path.Join(remoteDir, name)
	partPath := remotePath + ".part"

	dst, err := cli.Create(partPath)
	if err != nil {
		return fmt.Errorf("sftp: create remote file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("sftp: upload copy: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("sftp: close remote file: %w", err)
	}

	// posix-rename replaces atomically; plain SFTP rename refuses to overwrite
	if err := cli.PosixRename(partPath, remotePath); err != nil {
		_ = cli.Remove(remotePath)
		if err := cli.Rename(partPath, remotePath); err != nil {
			return fmt.Errorf("sftp: rename %s: %w", partPath, err)
		}
	}
	return nil
}

func hostKeyCallback(cfg Config) (ssh.HostKeyCallback, error) {
	if cfg.InsecureIgnoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	if cfg.KnownHostsPath == "" {
		return nil, errors.New("sftp: SFTP_KNOWN_HOSTS is required when host key checking is enabled")
	}
	cb, err := knownhosts.New(cfg.KnownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("sftp: load known_hosts: %w", err)
	}
	return cb, nil
}

func dial(ctx context.Context, cfg Config, cb ssh.HostKeyCallback) (*ssh.Client, error) {
	sshCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Pass)},
		HostKeyCallback: cb,
		Timeout:         20 * time.Second,
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	d := net.Dialer{Timeout: sshCfg.Timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("sftp: dial error: %w", err)
	}

	// the handshake does not watch ctx, so bound it with a deadline
	if dl, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(dl)
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, sshCfg)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("sftp: handshake with %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Time{})

	return ssh.NewClient(c, chans, reqs), nil
}
