package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"tofu/cycle"
	"tofu/model"
	"tofu/npsha"
	"tofu/pressure"
	"tofu/refrigerant"
	"tofu/report"
)

// Hub 处理一条连接上的计算请求，维护该会话内的计算记录
// 记录只在会话内有效，连接断开即丢弃
type Hub struct {
	conn *websocket.Conn

	formatter *report.Formatter

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg

	// 各类计算的最近一次记录
	records map[string]*model.CalculationRecord

	done chan struct{}
}

// 计算书标题
var recordTitles = map[string]string{
	"cycle":         "制冷循环计算",
	"npsha":         "泵汽蚀余量计算",
	"pressure_drop": "管道压降计算",
}

func NewHub() *Hub {
	return &Hub{
		formatter: report.NewFormatter(cfg.Project, cfg.ReportVersion, cfg.ReportPrefix),
		msg:       make(chan model.Msg, 10),
		reply:     make(chan model.Msg, 10),
		records:   make(map[string]*model.CalculationRecord),
		done:      make(chan struct{}),
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
			switch msg.Type {
			case "cycle":
				h.reply <- h.handleCycle(msg.Content)
			case "npsha":
				h.reply <- h.handleNPSHa(msg.Content)
			case "pressure_drop":
				h.reply <- h.handlePressureDrop(msg.Content)
			case "presets":
				h.reply <- h.handlePresets()
			case "project":
				h.reply <- h.handleProject(msg.Content)
			case "report":
				h.reply <- h.handleReport(msg.Content, false)
			case "report_pdf":
				h.reply <- h.handleReport(msg.Content, true)
			default:
				log.Println("no such type: ", msg.Type)
				h.reply <- errMsg(msg.Type, "未知的消息类型: "+msg.Type)
			}
		case <-h.done:
			return
		}
	}
}

// 错误应答，type 为 原类型+Error
func errMsg(msgType, reason string) model.Msg {
	return model.Msg{Type: msgType + "Error", Content: reason}
}

func okMsg(msgType string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		log.Println("err: ", err)
		return errMsg(msgType, "应答序列化失败")
	}
	return model.Msg{Type: msgType + "Done", Content: string(data)}
}

// 记录一次计算，成功与否都记账，失败的记录不会生成计算书
func (h *Hub) record(kind string, params, result interface{}, completed bool) {
	h.records[kind] = &model.CalculationRecord{
		UID:       uuid.NewString(),
		Kind:      kind,
		Title:     recordTitles[kind],
		Params:    params,
		Result:    result,
		Completed: completed,
		CreatedAt: time.Now(),
	}
}

// 制冷循环请求，mode 决定参数形态
// 理想模式下即便传入过冷过热字段也不会参与计算，等同于忽略
type cycleRequest struct {
	Mode string `json:"mode"`
	model.RealCycleParams
}

func (h *Hub) handleCycle(content string) model.Msg {
	var req cycleRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return errMsg("cycle", "请求解析失败: "+err.Error())
	}

	var result *model.CycleResult
	var err error
	var params interface{}
	switch req.Mode {
	case model.CycleModeIdeal:
		p := &model.IdealCycleParams{
			Refrigerant:          req.Refrigerant,
			EvaporatingTemp:      req.EvaporatingTemp,
			CondensingTemp:       req.CondensingTemp,
			MassFlowRate:         req.MassFlowRate,
			IsentropicEfficiency: req.IsentropicEfficiency,
		}
		params = p
		result, err = cycle.ComputeIdeal(p)
	case model.CycleModeReal:
		p := req.RealCycleParams
		params = &p
		result, err = cycle.ComputeReal(&p)
	default:
		return errMsg("cycle", "未知的计算模式: "+req.Mode)
	}

	h.record("cycle", params, result, err == nil)
	if err != nil {
		return errMsg("cycle", err.Error())
	}
	return okMsg("cycle", result)
}

func (h *Hub) handleNPSHa(content string) model.Msg {
	var params model.NPSHaParams
	if err := json.Unmarshal([]byte(content), &params); err != nil {
		return errMsg("npsha", "请求解析失败: "+err.Error())
	}
	result, err := npsha.Compute(&params, cfg.NPSHSafetyMargin)
	h.record("npsha", &params, result, err == nil)
	if err != nil {
		return errMsg("npsha", err.Error())
	}
	return okMsg("npsha", result)
}

func (h *Hub) handlePressureDrop(content string) model.Msg {
	var params model.PressureDropParams
	if err := json.Unmarshal([]byte(content), &params); err != nil {
		return errMsg("pressure_drop", "请求解析失败: "+err.Error())
	}
	result, err := pressure.Compute(&params)
	h.record("pressure_drop", &params, result, err == nil)
	if err != nil {
		return errMsg("pressure_drop", err.Error())
	}
	return okMsg("pressure_drop", result)
}

func (h *Hub) handlePresets() model.Msg {
	return okMsg("presets", &npsha.Presets{
		StandardAtmosphere:  npsha.StandardAtmosphere,
		AltitudePressures:   npsha.AltitudePressures,
		WaterVaporPressures: npsha.WaterVaporPressures,
		LiquidDensities:     npsha.LiquidDensities,
		Refrigerants:        refrigerant.Names(),
	})
}

// 更新本会话的工程信息
func (h *Hub) handleProject(content string) model.Msg {
	var info model.ProjectInfo
	if err := json.Unmarshal([]byte(content), &info); err != nil {
		return errMsg("project", "请求解析失败: "+err.Error())
	}
	h.formatter.Project = info
	return okMsg("project", &info)
}

type reportRequest struct {
	Kind     string `json:"kind"`
	FileName string `json:"file_name"` // 导出文件名，可选
}

type reportResponse struct {
	Document *model.Document `json:"document"`
	FileName string          `json:"file_name"`
	PDF      string          `json:"pdf,omitempty"` // base64
}

func (h *Hub) handleReport(content string, pdf bool) model.Msg {
	msgType := "report"
	if pdf {
		msgType = "report_pdf"
	}
	var req reportRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return errMsg(msgType, "请求解析失败: "+err.Error())
	}

	rec := h.records[req.Kind]
	doc, err := h.formatter.Format(rec)
	if err != nil {
		return errMsg(msgType, err.Error())
	}

	fileName := req.FileName
	if fileName == "" {
		ext := ".txt"
		if pdf {
			ext = ".pdf"
		}
		fileName = doc.Title + "_" + doc.GeneratedAt.Format("20060102_150405") + ext
	} else if err = report.CheckFileName(fileName); err != nil {
		return errMsg(msgType, err.Error())
	}

	resp := reportResponse{Document: doc, FileName: fileName}
	if pdf {
		var buf bytes.Buffer
		if err = report.RenderPDF(&buf, doc, cfg.PDFFontPath); err != nil {
			return errMsg(msgType, err.Error())
		}
		resp.PDF = base64.StdEncoding.EncodeToString(buf.Bytes())
	}
	return okMsg(msgType, &resp)
}
