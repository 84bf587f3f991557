package cli

import "context"

// listNotifications fetches the first page of history and mirrors it into
// the local store, so realtime pushes and REST history share one list.
func (a *App) listNotifications(ctx context.Context) error {
	page, err := a.notifications.List(ctx, 1, 20, false)
	if err != nil {
		return err
	}
	a.inbox.Replace(page.Notifications)

	if len(page.Notifications) == 0 {
		printlnFn("No notifications.")
		return nil
	}
	for _, n := range page.Notifications {
		printlnFn(formatNotification(n))
	}

	unread, err := a.notifications.UnreadCount(ctx)
	if err != nil {
		return err
	}
	printlnFn("Unread:", unread)
	return nil
}

func (a *App) markRead(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errMissingID
	}
	if err := a.notifications.MarkRead(ctx, args[0]); err != nil {
		return err
	}
	a.inbox.MarkRead(args[0])
	return nil
}

func (a *App) markAllRead(ctx context.Context) error {
	if err := a.notifications.MarkAllRead(ctx); err != nil {
		return err
	}
	a.inbox.MarkAllRead()
	printlnFn("All notifications marked read.")
	return nil
}
