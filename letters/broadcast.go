package letters

import (
	"context"
	"time"

	"github.com/MiraiSubject/CoteValentines2023/db"
	"github.com/MiraiSubject/CoteValentines2023/model"
	"golang.org/x/time/rate"
)

// ChannelSink delivers one rendered letter to the destination channel.
type ChannelSink interface {
	SendLetter(letter *model.Letter) error
}

// PublishAll loads every stored letter once, then emits them one at a time,
// waiting delay = min(maxPerItem, maxTotal/N) before each send so the whole
// run fits inside maxTotal without ever pausing longer than maxPerItem. The
// store is not touched again after the initial snapshot, so nothing is held
// open across the sleeps. The first failed send aborts the run with a
// DispatchError carrying the partial count; cancelling ctx does the same.
func (s *Service) PublishAll(ctx context.Context, sink ChannelSink, maxTotal, maxPerItem time.Duration) (int, error) {
	found, err := db.GetAllLetters()
	if err != nil {
		return 0, err
	}
	if len(found) == 0 {
		return 0, nil
	}

	delay := maxPerItem
	if per := maxTotal / time.Duration(len(found)); per < delay {
		delay = per
	}

	limiter := rate.NewLimiter(rate.Every(delay), 1)
	limiter.Allow() // burn the initial burst token so the first letter waits too

	sent := 0
	for _, letter := range found {
		if err := limiter.Wait(ctx); err != nil {
			return sent, &DispatchError{Sent: sent, Err: err}
		}
		if err := sink.SendLetter(letter); err != nil {
			return sent, &DispatchError{Sent: sent, Err: err}
		}
		sent++
	}

	return sent, nil
}
