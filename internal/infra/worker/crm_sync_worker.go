package worker

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
)

const DefaultSyncInterval = 5 * time.Minute

// LeadSyncer é o contrato da varredura (uma rodada completa)
type LeadSyncer interface {
	Execute(ctx context.Context) (int, error)
}


type CRMSyncWorker struct {
	syncer       LeadSyncer
	tickInterval time.Duration
	running      atomic.Bool
}


func NewCRMSyncWorker(syncer LeadSyncer, tickInterval time.Duration) *CRMSyncWorker {
	if tickInterval <= 0 {
		tickInterval = DefaultSyncInterval
	}
	return &CRMSyncWorker{
		syncer:       syncer,
		tickInterval: tickInterval,
	}
}


func (w *CRMSyncWorker) Start(ctx context.Context) {
	log.Printf("🕒 CRM Sync Worker iniciado (intervalo: %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ CRM Sync Worker encerrado")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}


// RunOnce executa uma varredura se nenhuma outra estiver em andamento.
// Disparo durante uma varredura ativa é descartado, não enfileirado.
// Retorna false quando o disparo foi descartado.
func (w *CRMSyncWorker) RunOnce(ctx context.Context) bool {
	if !w.running.CompareAndSwap(false, true) {
		log.Println("⏭️ [CRM Sync] Varredura anterior ainda rodando, pulando disparo")
		return false
	}
	defer w.running.Store(false)

	log.Println("🔄 [CRM Sync] Rodando varredura...")
	middleware.RecordSyncRun()

	synced, err := w.syncer.Execute(ctx)
	if err != nil {
		log.Printf("❌ [CRM Sync] Varredura falhou: %v", err)
		return true
	}

	if synced > 0 {
		log.Printf("✅ [CRM Sync] %d lead(s) sincronizado(s) com o CRM", synced)
		middleware.RecordLeadsSynced(synced)
	}

	return true
}
