// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up           string `yaml:"up" kong:"help='Up key',default='up,k'"`
	Down         string `yaml:"down" kong:"help='Down key',default='down,j'"`
	Left         string `yaml:"left" kong:"help='Left key',default='left,h'"`
	Right        string `yaml:"right" kong:"help='Right key',default='right,l'"`
	Select       string `yaml:"select" kong:"help='Select/activate key',default='enter'"`
	Deselect     string `yaml:"deselect" kong:"help='Deselect key',default='esc'"`
	Back         string `yaml:"back" kong:"help='Previous page key',default='backspace'"`
	ClearHistory string `yaml:"clear_history" kong:"help='Forget page history key',default='X'"`
	Reload       string `yaml:"reload" kong:"help='Reload page key',default='ctrl+r,f5'"`
	Quit         string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Help         string `yaml:"help" kong:"help='Toggle help key',default='?'"`
	Filter       string `yaml:"filter" kong:"help='Filter list key',default='/'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Hover    string `yaml:"hover" kong:"help='Hovered cell border color',default='63'"`
	Selected string `yaml:"selected" kong:"help='Selected cell border color',default='205'"`
	Accent   string `yaml:"accent" kong:"help='Accent color',default='212'"`
	Muted    string `yaml:"muted" kong:"help='Muted text color',default='244'"`
}

// CommandConfig is one external command offered on an item page.
type CommandConfig struct {
	Label    string `yaml:"label"`
	Template string `yaml:"template"`
	Terminal bool   `yaml:"terminal,omitempty"`
	Detached bool   `yaml:"detached,omitempty"`
	Notify   bool   `yaml:"notify,omitempty"`
}

// CommandsConfig groups external commands by item kind.
type CommandsConfig struct {
	Video    []CommandConfig `yaml:"video"`
	Playlist []CommandConfig `yaml:"playlist"`
}

// Settings represents the application configuration.
type Settings struct {
	Invidious        string       `yaml:"invidious" kong:"help='Invidious instance URL',default='https://yewtu.be'"`
	Region           string       `yaml:"region" kong:"help='Trending region as an ISO 3166 country code'"`
	RSSBaseURL       string       `yaml:"rss_base_url" kong:"help='YouTube channel feed base URL',default='https://www.youtube.com/feeds/videos.xml'"`
	RequestTimeout   int          `yaml:"request_timeout" kong:"help='Per-request timeout in seconds',default='10'"`
	Retries          int          `yaml:"retries" kong:"help='Retry attempts for failed requests',default='2'"`
	HistoryFile      string       `yaml:"history_file" kong:"help='Watch history database path'"`
	HistoryLimit     int          `yaml:"history_limit" kong:"help='Maximum watch history entries',default='50'"`
	Thumbnails       bool         `yaml:"thumbnails" kong:"help='Download and show thumbnails',default='true'"`
	ThumbnailWorkers int          `yaml:"thumbnail_workers" kong:"help='Parallel thumbnail downloads',default='4'"`
	CacheDir         string       `yaml:"cache_dir" kong:"help='Cache directory'"`
	DownloadDir      string       `yaml:"download_dir" kong:"help='Download directory'"`
	Terminal         string       `yaml:"terminal" kong:"help='Command prefix that opens a new terminal window',default='xterm -e'"`
	LogFile          string       `yaml:"log_file" kong:"help='Log file path'"`
	Debug            bool         `yaml:"debug" kong:"help='Enable debug logging',default='false'"`
	KeyMap           KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme            ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`

	Commands CommandsConfig `yaml:"commands" kong:"-"`
}

// Timeout returns the per-request timeout as a duration.
func (s Settings) Timeout() time.Duration {
	if s.RequestTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.RequestTimeout) * time.Second
}

// DefaultCommands returns the commands offered when the config has none.
func DefaultCommands() CommandsConfig {
	return CommandsConfig{
		Video: []CommandConfig{
			{Label: "Play video", Template: "mpv '${url}'"},
			{Label: "Play audio", Template: "mpv --no-video '${url}'", Terminal: true, Detached: true},
			{Label: "Download video", Template: "yt-dlp -P '${download_dir}' '${url}'", Detached: true, Notify: true},
			{Label: "Download audio", Template: "yt-dlp -x -P '${download_dir}' '${url}'", Detached: true, Notify: true},
		},
		Playlist: []CommandConfig{
			{Label: "Play all", Template: "mpv '${url}'"},
			{Label: "Play all (audio)", Template: "mpv --no-video '${url}'", Terminal: true, Detached: true},
			{Label: "Download all", Template: "yt-dlp -P '${download_dir}/${title}' '${url}'", Detached: true, Notify: true},
		},
	}
}

// WithDefaultCommands fills empty command lists with the defaults.
func (s Settings) WithDefaultCommands() Settings {
	defaults := DefaultCommands()
	if len(s.Commands.Video) == 0 {
		s.Commands.Video = defaults.Video
	}
	if len(s.Commands.Playlist) == 0 {
		s.Commands.Playlist = defaults.Playlist
	}
	return s
}
