package server

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"chemcalc/calculator"
	"chemcalc/model"
	"chemcalc/worksheet"
)

// 无法解析的请求，仍按顺序应答
const msgMalformed = "malformed"

// Hub 处理一个连接上的请求，按到达顺序逐条应答
type Hub struct {
	c    calculator.Calculator
	ws   *worksheet.Worksheet
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(c calculator.Calculator) *Hub {
	return &Hub{
		c:     c,
		ws:    worksheet.New(c),
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			err := h.conn.WriteJSON(&reply)
			if err != nil {
				log.Println("err: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			select {
			case h.reply <- h.dispatch(msg):
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) dispatch(msg model.Msg) model.Msg {
	var (
		replyType string
		content   interface{}
		err       error
	)
	switch msg.Type {
	case model.MsgPump:
		replyType = model.MsgPumpResult
		content, err = h.pump(msg.Content)
	case model.MsgYield:
		replyType = model.MsgYieldResult
		content, err = h.yield(msg.Content)
	case model.MsgSetPump:
		replyType = model.MsgInputs
		content, err = h.setField(msg.Content, h.ws.SetPumpField, func() interface{} { return h.ws.PumpInputs() })
	case model.MsgSetYield:
		replyType = model.MsgInputs
		content, err = h.setField(msg.Content, h.ws.SetYieldField, func() interface{} { return h.ws.YieldInputs() })
	case model.MsgReset:
		replyType = model.MsgInputs
		err = h.ws.ResetPump(msg.Content)
		content = h.ws.PumpInputs()
	case model.MsgPresets:
		replyType = model.MsgPresets
		content = h.c.Presets()
	case msgMalformed:
		err = fmt.Errorf("malformed request: %s", msg.Content)
	default:
		err = fmt.Errorf("no such type: %s", msg.Type)
	}
	if err != nil {
		log.WithFields(log.Fields{
			"type": msg.Type,
			"err":  err,
		}).Warn("请求处理失败")
		return model.Msg{Type: model.MsgError, Content: err.Error()}
	}

	data, err := json.Marshal(content)
	if err != nil {
		log.Println("err: ", err)
		return model.Msg{Type: model.MsgError, Content: err.Error()}
	}
	return model.Msg{Type: replyType, Content: string(data)}
}

// content 非空时整体替换当前输入
func (h *Hub) pump(content string) (interface{}, error) {
	if content != "" {
		var in model.PumpInputs
		if err := json.Unmarshal([]byte(content), &in); err != nil {
			return nil, err
		}
		h.ws.SetPumpInputs(in)
	}
	return h.ws.CalculatePump()
}

func (h *Hub) yield(content string) (interface{}, error) {
	if content != "" {
		var in model.YieldInputs
		if err := json.Unmarshal([]byte(content), &in); err != nil {
			return nil, err
		}
		h.ws.SetYieldInputs(in)
	}
	return h.ws.CalculateYield()
}

func (h *Hub) setField(content string, set func(name, value string) error, inputs func() interface{}) (interface{}, error) {
	var edit model.FieldEdit
	if err := json.Unmarshal([]byte(content), &edit); err != nil {
		return nil, err
	}
	if err := set(edit.Name, edit.Value); err != nil {
		return nil, err
	}
	return inputs(), nil
}
