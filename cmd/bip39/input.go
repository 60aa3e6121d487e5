package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"
)

func eprint(str string)                 { fmt.Fprint(os.Stderr, str) }
func eprintf(str string, values ...any) { fmt.Fprintf(os.Stderr, str, values...) }
func eprintln(values ...any)            { fmt.Fprintln(os.Stderr, values...) }

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readSentence resolves the mnemonic sentence input for a subcommand. The
// sentence is taken from the positional arguments if any were given.
// Otherwise it is read from standard input: piped input is consumed whole,
// while interactive terminals get a hidden prompt so the phrase is not
// echoed into the user's scrollback.
func readSentence(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if !stdinIsTerminal() {
		sentence, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read sentence from standard input: %w", err)
		}
		return string(sentence), nil
	}

	eprint(faint("Enter mnemonic sentence (input is hidden): "))
	sentence, err := term.ReadPassword(int(os.Stdin.Fd()))
	eprintln()
	if err != nil {
		return "", fmt.Errorf("failed to read sentence: %w", err)
	}
	return string(sentence), nil
}

var errPassphraseConfirmationFailed = errors.New("Passphrases do not match. Please try again.")

// userInputPassphrase accepts a passphrase input from the user's terminal.
func userInputPassphrase(prompt string, confirm bool) (string, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	oldState, err := term.GetState(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}

	go func() {
		<-ctx.Done()
		fmt.Println()
		term.Restore(int(os.Stdin.Fd()), oldState)
	}()

	passChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		eprint(faint(prompt))
		pass1, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			errChan <- fmt.Errorf("failed to read passphrase: %w", err)
			return
		}

		if confirm {
			eprint(faint("\nConfirm passphrase: "))
			pass2, err := term.ReadPassword(int(os.Stdin.Fd()))
			if err != nil {
				errChan <- fmt.Errorf("failed to confirm passphrase: %w", err)
				return
			}
			if string(pass1) != string(pass2) {
				errChan <- errPassphraseConfirmationFailed
				return
			}
		}
		passChan <- string(pass1)
	}()

	select {
	case <-ctx.Done():
		return "", errors.New("aborted")

	case err := <-errChan:
		eprintln()
		if errors.Is(err, errPassphraseConfirmationFailed) {
			eprintln(red(err.Error()))
			return userInputPassphrase(prompt, confirm)
		}
		return "", err

	case pass := <-passChan:
		eprintln()
		return pass, nil
	}
}
