package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/desktop.yaml
var defaultDesktopYAML []byte

// Default returns the built-in configuration used when desktop.yaml is
// missing or unreadable. It mirrors defaults/desktop.yaml.
func Default() DesktopConfig {
	return DesktopConfig{
		Owner: "Emanuel Ary",
		Shortcuts: []Shortcut{
			{Title: "Github", App: "github"},
			{Title: "Projects", App: "projects"},
			{Title: "Resume", URL: "/resumes/Emanuel Ary de Oliveira - Curriculo.pdf"},
			{Title: "LinkedIn", URL: "https://www.linkedin.com/in/emanuel-oliveira-4010841a2/"},
			{Title: "YouTube", URL: "https://www.youtube.com/@emanuel_ary_dev/featured"},
			{Title: "Internet", URL: "https://www.google.com/"},
			{Title: "Figma", URL: "https://www.figma.com/design/DijMBM0eTZJexKjoytNA4i/Wiki-IPM"},
			{Title: "Calc", App: "calculator"},
			{Title: "Pong", App: "pong"},
			{Title: "Tetris", App: "tetris"},
		},
		StartMenu: []Shortcut{
			{Title: "Calculator", App: "calculator"},
			{Title: "Pong", App: "pong"},
			{Title: "GitHub", App: "github"},
			{Title: "LinkedIn", URL: "https://www.linkedin.com/in/emanuel-oliveira-4010841a2/"},
			{Title: "Source Code", URL: "https://github.com/EmanuelAry/emanuel-web-portifolio"},
			{Title: "Tetris", App: "tetris"},
		},
		Profile: Profile{
			Name:        "Emanuel Ary de Oliveira",
			Login:       "EmanuelAry",
			Bio:         "Developing software with quality, usability, and engineering.",
			Company:     "UDESC - Universidade Estadual de Santa Catarina",
			Location:    "Rio do Sul, SC - Brazil",
			URL:         "https://github.com/EmanuelAry",
			PublicRepos: 11,
			Followers:   3,
			Following:   4,
			Repos: []Repo{
				{
					Name:        "CaixaEletronico",
					Description: "Caixa eletrônico para trabalho da disciplina de Testes, funções 100% contempladas com testes unitários, de integração e de sistema com PHPUnit",
					Language:    "PHP",
					Stars:       1,
					URL:         "https://github.com/EmanuelAry/CaixaEletronico/",
				},
				{
					Name:        "Web Portifólio TypeScritp",
					Description: "Web portifólio com desing inspirado no clássico windows 95",
					Language:    "TypeScript",
					Stars:       1,
					URL:         "https://github.com/EmanuelAry/emanuel-web-portifolio",
				},
				{
					Name:        "Cadastro de Pessoas com Laravel e Vue",
					Description: "Exemplo básico de utilização do framework larevel em conjunto com Vue",
					Language:    "Vue",
					Stars:       1,
					URL:         "https://github.com/EmanuelAry/CastroPessoaLaravelVue",
				},
				{
					Name:        "CRUD-C#",
					Description: "Estudo em C#: Aplicativo desktop em C# de cadastro de produtos",
					Language:    "C#",
					Stars:       1,
					URL:         "https://github.com/EmanuelAry/CRUD-C-",
				},
			},
		},
		Platform: Platform{
			TickRate:       60,
			SSHAddress:     ":2222",
			HostKeyPath:    ".ssh/retro_desk_ed25519",
			IdleTimeout:    10 * time.Minute,
			ScoreboardSize: 10,
		},
	}
}

// DefaultYAML returns the embedded desktop.yaml.
func DefaultYAML() []byte {
	return defaultDesktopYAML
}
