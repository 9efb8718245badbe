// Package shell renders the activation snippets that run "gsw auto" whenever
// an interactive shell changes directory.
package shell

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
)

const bashScript = `_gsw_auto_switch() {
    if command -v {{quote .Binary}} >/dev/null 2>&1; then
        {{quote .Binary}} auto --quiet
    fi
}

_gsw_prompt_hook() {
    if [[ "$PWD" != "$_GSW_LAST_PWD" ]]; then
        _GSW_LAST_PWD="$PWD"
        _gsw_auto_switch
    fi
}

case "$-" in
    *i*)
        if [[ ";${PROMPT_COMMAND:-};" != *";_gsw_prompt_hook;"* ]]; then
            PROMPT_COMMAND="_gsw_prompt_hook${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
        fi
        _gsw_prompt_hook
        ;;
esac
`

const zshScript = `_gsw_auto_switch() {
    if command -v {{quote .Binary}} >/dev/null 2>&1; then
        {{quote .Binary}} auto --quiet
    fi
}

if [[ -o interactive ]]; then
    autoload -U add-zsh-hook
    add-zsh-hook chpwd _gsw_auto_switch
    _gsw_auto_switch
fi
`

const fishScript = `function _gsw_auto_switch --on-variable PWD
    if command -v {{quote .Binary}} >/dev/null 2>&1
        {{quote .Binary}} auto --quiet
    end
end

if status is-interactive
    _gsw_auto_switch
end
`

const nushellScript = `def _gsw_auto_switch [] {
    if (which {{nuquote .Binary}} | is-not-empty) {
        ^{{nuquote .Binary}} auto --quiet
    }
}

$env.config = ($env.config | upsert hooks.env_change.PWD {|config|
    let existing = ($config | get -i hooks.env_change.PWD | default [])
    $existing | append {|before, after| _gsw_auto_switch }
})

_gsw_auto_switch
`

var scripts = map[string]string{
	"bash":    bashScript,
	"zsh":     zshScript,
	"fish":    fishScript,
	"nushell": nushellScript,
}

var aliases = map[string]string{
	"nu": "nushell",
}

var plainWord = regexp.MustCompile(`^[A-Za-z0-9_./+-]+$`)

var funcs = template.FuncMap{
	"quote":   quote,
	"nuquote": nuquote,
}

// Shells lists the supported shell names.
func Shells() []string {
	return []string{"bash", "zsh", "fish", "nushell"}
}

// Script renders the activation snippet for shell. binary is the command the
// hook runs, usually "gsw".
func Script(shell, binary string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(shell))
	if alias, ok := aliases[name]; ok {
		name = alias
	}

	text, ok := scripts[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", gerrors.ErrUnsupportedShell, shell, strings.Join(Shells(), ", "))
	}
	if binary == "" {
		binary = "gsw"
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Binary string }{binary}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// quote single-quotes s for POSIX shells and fish when it is not a plain word.
func quote(s string) string {
	if plainWord.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func nuquote(s string) string {
	if plainWord.MatchString(s) {
		return s
	}
	return "`" + s + "`"
}
