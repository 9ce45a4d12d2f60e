// Package config loads the desktop's YAML configuration: the owner's
// shortcuts and links, and platform settings such as frame rate and the SSH
// listen address. Game rules are fixed in their packages and never read from
// here.
package config

import "time"

// DesktopConfig is the root of desktop.yaml.
type DesktopConfig struct {
	Owner     string     `yaml:"owner"`
	Shortcuts []Shortcut `yaml:"shortcuts"`
	StartMenu []Shortcut `yaml:"start_menu"`
	Profile   Profile    `yaml:"profile"`
	Platform  Platform   `yaml:"platform"`
}

// Profile is the owner's GitHub card shown by the github and projects apps.
// It is static data; nothing is fetched at runtime.
type Profile struct {
	Name        string `yaml:"name"`
	Login       string `yaml:"login"`
	Bio         string `yaml:"bio"`
	Company     string `yaml:"company"`
	Location    string `yaml:"location"`
	URL         string `yaml:"url"`
	PublicRepos int    `yaml:"public_repos"`
	Followers   int    `yaml:"followers"`
	Following   int    `yaml:"following"`
	Repos       []Repo `yaml:"repos"`
}

// Repo is one entry of the profile's repository list.
type Repo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
	Stars       int    `yaml:"stars"`
	Forks       int    `yaml:"forks"`
	URL         string `yaml:"url"`
}

// Shortcut is a desktop icon or start-menu entry. Exactly one of App and URL
// is set: App names a registered game, URL is a link handed to the host.
type Shortcut struct {
	Title string `yaml:"title"`
	App   string `yaml:"app,omitempty"`
	URL   string `yaml:"url,omitempty"`
}

// Platform holds runtime settings for the terminal and SSH front ends.
type Platform struct {
	TickRate       int           `yaml:"tick_rate"`
	SSHAddress     string        `yaml:"ssh_address"`
	HostKeyPath    string        `yaml:"host_key_path"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	ScoreboardSize int           `yaml:"scoreboard_size"`
}

// withDefaults fills a missing profile and zero platform values so a partial
// file still works.
func (c DesktopConfig) withDefaults() DesktopConfig {
	if c.Profile.Name == "" && len(c.Profile.Repos) == 0 {
		c.Profile = Default().Profile
	}

	d := Default().Platform
	if c.Platform.TickRate <= 0 {
		c.Platform.TickRate = d.TickRate
	}
	if c.Platform.SSHAddress == "" {
		c.Platform.SSHAddress = d.SSHAddress
	}
	if c.Platform.HostKeyPath == "" {
		c.Platform.HostKeyPath = d.HostKeyPath
	}
	if c.Platform.IdleTimeout <= 0 {
		c.Platform.IdleTimeout = d.IdleTimeout
	}
	if c.Platform.ScoreboardSize <= 0 {
		c.Platform.ScoreboardSize = d.ScoreboardSize
	}
	return c
}
