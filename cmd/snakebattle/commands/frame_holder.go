package commands

import (
	"sync"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
)

// frameHolder collects frames streamed by the api. The first frame is also
// handed out once through initialFrame so a replay can start drawing early.
type frameHolder struct {
	sync.RWMutex
	frames []*pb.GameFrame
	first  chan *pb.GameFrame
	once   sync.Once
}

func (fh *frameHolder) firstFrames() chan *pb.GameFrame {
	fh.once.Do(func() {
		fh.first = make(chan *pb.GameFrame, 1)
	})
	return fh.first
}

func (fh *frameHolder) append(frame *pb.GameFrame) {
	fh.Lock()
	defer fh.Unlock()

	if len(fh.frames) == 0 {
		first := fh.firstFrames()
		first <- frame
		close(first)
	}

	fh.frames = append(fh.frames, frame)
}

func (fh *frameHolder) get(index int) *pb.GameFrame {
	fh.RLock()
	defer fh.RUnlock()

	if index < 0 || index >= len(fh.frames) {
		return nil
	}

	return fh.frames[index]
}

func (fh *frameHolder) initialFrame() <-chan *pb.GameFrame {
	return fh.firstFrames()
}

func (fh *frameHolder) count() int {
	fh.RLock()
	defer fh.RUnlock()

	return len(fh.frames)
}
