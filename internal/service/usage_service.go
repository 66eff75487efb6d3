package service

import (
	"fmt"
	"sync"
	"time"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/model"
)

const dayLayout = "2006-01-02"

// usageEntry 单个客户端的当日计数，entry 自带锁
// 同一客户端的 惰性重置+计数 在 entry 锁内原子完成，
// 不同客户端只在外层 map 查找时短暂竞争
type usageEntry struct {
	mu        sync.Mutex
	counts    map[model.ActionKind]int
	lastReset string
}

// UsageService 按客户端、按动作的每日配额账本
// 纯内存实现：没有后台扫描，计数在新的一天第一次被访问时惰性清零
type UsageService struct {
	mu      sync.Mutex
	clients map[string]*usageEntry

	limitsMu sync.RWMutex
	limits   map[model.ActionKind]int

	// now 可注入，测试跨天重置时替换
	now func() time.Time
}

func NewUsageService(cfg config.QuotaConfig) *UsageService {
	s := &UsageService{
		clients: make(map[string]*usageEntry),
		now:     time.Now,
	}
	s.SetLimits(cfg)
	return s
}

// SetLimits 配置热更新入口
func (s *UsageService) SetLimits(cfg config.QuotaConfig) {
	s.limitsMu.Lock()
	defer s.limitsMu.Unlock()
	s.limits = map[model.ActionKind]int{
		model.ActionInterview:   cfg.InterviewsPerDay,
		model.ActionResumeCheck: cfg.ResumeChecksPerDay,
		model.ActionPitchReview: cfg.PitchReviewsPerDay,
		model.ActionRoleplay:    cfg.RoleplayPerDay,
		model.ActionSoftSkill:   cfg.SoftSkillsPerDay,
	}
}

func (s *UsageService) limit(kind model.ActionKind) int {
	s.limitsMu.RLock()
	defer s.limitsMu.RUnlock()
	return s.limits[kind]
}

func (s *UsageService) entry(clientID string) *usageEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.clients[clientID]
	if !ok {
		e = &usageEntry{counts: make(map[model.ActionKind]int)}
		s.clients[clientID] = e
	}
	return e
}

func (s *UsageService) today() string {
	return s.now().UTC().Format(dayLayout)
}

// lazyReset 调用方必须持有 e.mu
func (s *UsageService) lazyReset(e *usageEntry) {
	today := s.today()
	if e.lastReset != today {
		e.counts = make(map[model.ActionKind]int)
		e.lastReset = today
	}
}

// CheckAllowed 检查客户端今天是否还能执行该动作
// 配额耗尽是正常业务结果，通过返回值而非 error 传达
func (s *UsageService) CheckAllowed(clientID string, kind model.ActionKind) (bool, string) {
	e := s.entry(clientID)
	e.mu.Lock()
	defer e.mu.Unlock()

	s.lazyReset(e)
	limit := s.limit(kind)
	if e.counts[kind] >= limit {
		return false, quotaMessage(kind, limit)
	}
	return true, ""
}

// Record 动作成功完成后记一次用量，失败的动作绝不能调用
// 计数封顶在上限：检查和记账之间隔着一次无锁的生成器调用，
// 并发窗口里多放行的请求不允许把计数推过上限
func (s *UsageService) Record(clientID string, kind model.ActionKind) {
	e := s.entry(clientID)
	e.mu.Lock()
	defer e.mu.Unlock()

	s.lazyReset(e)
	if e.counts[kind] < s.limit(kind) {
		e.counts[kind]++
	}
}

// Stats 当前余量和下一次 UTC 零点重置时间
func (s *UsageService) Stats(clientID string) model.UsageSnapshot {
	e := s.entry(clientID)
	e.mu.Lock()
	defer e.mu.Unlock()

	s.lazyReset(e)

	remaining := make(map[model.ActionKind]int, len(model.AllActions))
	for _, kind := range model.AllActions {
		left := s.limit(kind) - e.counts[kind]
		if left < 0 {
			left = 0
		}
		remaining[kind] = left
	}

	nowUTC := s.now().UTC()
	midnight := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)

	return model.UsageSnapshot{
		Remaining: remaining,
		ResetsAt:  midnight,
	}
}

// ResetAll 清空全部客户端记录，运维接口使用
func (s *UsageService) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = make(map[string]*usageEntry)
}

// PurgeStale 移除重置日期早于昨天的条目，只是控内存，
// 语义上惰性重置仍是唯一权威
func (s *UsageService) PurgeStale() int {
	cutoff, _ := time.Parse(dayLayout, s.today())
	cutoff = cutoff.AddDate(0, 0, -1)

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, e := range s.clients {
		e.mu.Lock()
		last, err := time.Parse(dayLayout, e.lastReset)
		e.mu.Unlock()
		if err == nil && last.Before(cutoff) {
			delete(s.clients, id)
			purged++
		}
	}
	return purged
}

func quotaMessage(kind model.ActionKind, limit int) string {
	switch kind {
	case model.ActionInterview:
		return fmt.Sprintf("You've reached your daily limit of %d practice interviews. Come back tomorrow for more practice!", limit)
	case model.ActionResumeCheck:
		return "Resume check limit reached for today. Upgrade to Pro for unlimited access."
	case model.ActionPitchReview:
		return "Pitch review limit reached for today. Come back tomorrow to keep polishing!"
	case model.ActionRoleplay:
		return "Roleplay practice limit reached for today. Come back tomorrow for more practice!"
	case model.ActionSoftSkill:
		return "Soft skills practice limit reached for today. Come back tomorrow for more practice!"
	default:
		return "Daily limit reached for this action. Come back tomorrow!"
	}
}
