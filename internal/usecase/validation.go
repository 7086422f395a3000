package usecase

import "strings"

const DefaultDelimiter = ","

// CleanNames separa o texto cru no delimitador, remove espaços
// e descarta tokens vazios, preservando a ordem de entrada
func CleanNames(raw, delimiter string) []string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	names := []string{}
	for _, token := range strings.Split(raw, delimiter) {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	return names
}
