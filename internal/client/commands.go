package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-firebase-client/internal/service"
)

type command struct {
	usage   string
	minArgs int
	maxArgs int // -1 means unbounded
	run     func(ctx context.Context, args []string) error
}

func (a *App) commandTable() map[string]command {
	return map[string]command{
		"signup":         {usage: "EMAIL PASSWORD", minArgs: 2, maxArgs: 2, run: a.signUp},
		"signin":         {usage: "EMAIL PASSWORD", minArgs: 2, maxArgs: 2, run: a.signIn},
		"refresh":        {usage: "[REFRESH_TOKEN]", minArgs: 0, maxArgs: 1, run: a.refresh},
		"reset-password": {usage: "EMAIL", minArgs: 1, maxArgs: 1, run: a.resetPassword},
		"verify-email":   {usage: "", maxArgs: 0, run: a.verifyEmail},
		"email-verified": {usage: "", maxArgs: 0, run: a.emailVerified},
		"delete-user":    {usage: "", maxArgs: 0, run: a.deleteUser},
		"signout":        {usage: "", maxArgs: 0, run: a.signOut},
		"whoami":         {usage: "", maxArgs: 0, run: a.whoami},
		"token":          {usage: "[-copy]", maxArgs: 1, run: a.token},
		"get":            {usage: "PATH", minArgs: 1, maxArgs: 1, run: a.get},
		"getjson":        {usage: "PATH", minArgs: 1, maxArgs: 1, run: a.getJSON},
		"put":            {usage: "PATH KEY VALUE", minArgs: 3, maxArgs: 3, run: a.put},
		"put-int":        {usage: "PATH KEY N", minArgs: 3, maxArgs: 3, run: a.putInt},
		"update":         {usage: "PATH KEY VALUE", minArgs: 3, maxArgs: 3, run: a.update},
		"update-int":     {usage: "PATH KEY N", minArgs: 3, maxArgs: 3, run: a.updateInt},
		"putjson":        {usage: "PATH JSON", minArgs: 2, maxArgs: 2, run: a.putJSON},
		"remove":         {usage: "PATH", minArgs: 1, maxArgs: 1, run: a.remove},
	}
}

// ── auth ─────────────────────────────────────────────────────────────────────

func (a *App) signUp(ctx context.Context, args []string) error {
	if err := a.auth.SignUp(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.printOK("signed up as %s", a.auth.UserID())
	return nil
}

func (a *App) signIn(ctx context.Context, args []string) error {
	if err := a.auth.SignIn(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.printOK("signed in as %s", a.auth.UserID())
	return nil
}

func (a *App) refresh(ctx context.Context, args []string) error {
	var refreshToken string
	if len(args) == 1 {
		refreshToken = args[0]
	}
	if err := a.auth.RefreshIDToken(ctx, refreshToken); err != nil {
		return err
	}
	a.printOK("identity token refreshed")
	return nil
}

func (a *App) resetPassword(ctx context.Context, args []string) error {
	if err := a.auth.ResetPassword(ctx, args[0]); err != nil {
		return err
	}
	a.printOK("password reset email sent to %s", args[0])
	return nil
}

func (a *App) verifyEmail(ctx context.Context, _ []string) error {
	if err := a.auth.VerifyEmail(ctx, ""); err != nil {
		return err
	}
	a.printOK("verification email sent")
	return nil
}

func (a *App) emailVerified(ctx context.Context, _ []string) error {
	verified, err := a.auth.CheckEmailVerified(ctx, "")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(a.out, strconv.FormatBool(verified))
	return nil
}

func (a *App) deleteUser(ctx context.Context, _ []string) error {
	if err := a.auth.DeleteUser(ctx, ""); err != nil {
		return err
	}
	a.printOK("account deleted")
	return nil
}

func (a *App) signOut(ctx context.Context, _ []string) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	a.printOK("signed out")
	return nil
}

func (a *App) whoami(_ context.Context, _ []string) error {
	if a.auth.IDToken() == "" {
		_, _ = fmt.Fprintln(a.out, labelStyle.Render("not signed in"))
		return nil
	}

	a.printField("user id", a.auth.UserID())
	if expiry, err := a.auth.IDTokenExpiry(); err == nil {
		a.printField("token expires", expiry.Local().Format(time.RFC3339))
	} else {
		a.logger.Debug().Err(err).Msg("token expiry unavailable")
	}
	return nil
}

func (a *App) token(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	copyToken := fs.Bool("copy", false, "copy the identity token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: token [-copy]", ErrUsage)
	}

	idToken := a.auth.IDToken()
	if idToken == "" {
		return fmt.Errorf("token: %w", service.ErrNotAuthenticated)
	}

	if *copyToken {
		if err := a.copyText(idToken); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.printOK("identity token copied to the clipboard")
		return nil
	}
	_, _ = fmt.Fprintln(a.out, idToken)
	return nil
}

// ── database ─────────────────────────────────────────────────────────────────

// freshToken refreshes the session when its token is about to expire and
// returns the identity token to authorize a database call with. Without a
// session the call goes out unauthenticated.
func (a *App) freshToken(ctx context.Context) (string, error) {
	if a.auth.IDToken() == "" {
		return "", nil
	}
	if err := a.auth.EnsureFresh(ctx, a.skew); err != nil {
		return "", err
	}
	return a.auth.IDToken(), nil
}

func (a *App) get(ctx context.Context, args []string) error {
	idToken, err := a.freshToken(ctx)
	if err != nil {
		return err
	}
	value, err := a.db.Get(ctx, args[0], idToken)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(a.out, value)
	return nil
}

func (a *App) getJSON(ctx context.Context, args []string) error {
	idToken, err := a.freshToken(ctx)
	if err != nil {
		return err
	}
	doc, err := a.db.GetJSON(ctx, args[0], idToken)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(a.out, doc)
	return nil
}

func (a *App) put(ctx context.Context, args []string) error {
	return a.write(ctx, "put", args[0], args[1], args[2], a.db.Put)
}

func (a *App) putInt(ctx context.Context, args []string) error {
	n, err := parseInt(args[2])
	if err != nil {
		return err
	}
	return a.write(ctx, "put", args[0], args[1], n, a.db.Put)
}

func (a *App) update(ctx context.Context, args []string) error {
	return a.write(ctx, "update", args[0], args[1], args[2], a.db.Update)
}

func (a *App) updateInt(ctx context.Context, args []string) error {
	n, err := parseInt(args[2])
	if err != nil {
		return err
	}
	return a.write(ctx, "update", args[0], args[1], n, a.db.Update)
}

type writeFunc func(ctx context.Context, path, key string, value any, idToken string) error

func (a *App) write(ctx context.Context, op, path, key string, value any, fn writeFunc) error {
	idToken, err := a.freshToken(ctx)
	if err != nil {
		return err
	}
	if err = fn(ctx, path, key, value, idToken); err != nil {
		return err
	}
	a.printOK("%s %s/%s", op, path, key)
	return nil
}

func (a *App) putJSON(ctx context.Context, args []string) error {
	idToken, err := a.freshToken(ctx)
	if err != nil {
		return err
	}
	if err = a.db.PutJSON(ctx, args[0], args[1], idToken); err != nil {
		return err
	}
	a.printOK("put %s", args[0])
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	idToken, err := a.freshToken(ctx)
	if err != nil {
		return err
	}
	if err = a.db.Remove(ctx, args[0], idToken); err != nil {
		return err
	}
	a.printOK("removed %s", args[0])
	return nil
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrUsage, s)
	}
	return n, nil
}
