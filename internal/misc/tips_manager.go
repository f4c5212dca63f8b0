package misc

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

type TipsManager struct {
	Tips       []*Tip
	TopicsTips map[string][]*Tip
}

func NewTipsManager(tipsCsvReader *csv.Reader) (*TipsManager, error) {
	tm := &TipsManager{}
	tm.TopicsTips = make(map[string][]*Tip)

	log.Println("reading training tips CSV ...")

	tipsCsvReader.Comma = ';'
	for {
		record, err := tipsCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 2 {
			return nil, fmt.Errorf("record [%s] does not have 2 elements", record)
		}

		// TIP;TOPIC
		tip := &Tip{
			Text:  record[0],
			Topic: record[1],
		}
		tm.Tips = append(tm.Tips, tip)
		tm.TopicsTips[tip.Topic] = append(tm.TopicsTips[tip.Topic], tip)
	}

	log.Printf("training tips CSV read %d tips", len(tm.Tips))

	return tm, nil
}

func (tm *TipsManager) RandomTip() *Tip {
	index := rand.Float64() * float64(len(tm.Tips))
	return tm.Tips[int(index)]
}
